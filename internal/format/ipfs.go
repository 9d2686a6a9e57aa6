package format

import "strings"

const DefaultIPFSGateway = "https://cloudflare-ipfs.com/ipfs/"

// IPFSPathOrURL turns an ipfs:// reference into a gateway URL. Anything else is returned unchanged.
func IPFSPathOrURL(uri, gateway string) string {
	uri = strings.TrimSpace(uri)
	if !strings.HasPrefix(uri, "ipfs://") {
		return uri
	}
	if gateway == "" {
		gateway = DefaultIPFSGateway
	}
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}
	path := strings.TrimPrefix(uri, "ipfs://")
	path = strings.TrimPrefix(path, "ipfs/")
	return gateway + path
}
