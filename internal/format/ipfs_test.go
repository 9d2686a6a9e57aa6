package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPFSPathOrURL(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		gateway string
		want    string
	}{
		{"http url untouched", "https://img.example/a.png", "", "https://img.example/a.png"},
		{"ipfs scheme", "ipfs://QmHash", "", DefaultIPFSGateway + "QmHash"},
		{"ipfs scheme with ipfs prefix", "ipfs://ipfs/QmHash", "", DefaultIPFSGateway + "QmHash"},
		{"custom gateway without slash", "ipfs://QmHash", "https://gw.example/ipfs", "https://gw.example/ipfs/QmHash"},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IPFSPathOrURL(tt.uri, tt.gateway))
		})
	}
}
