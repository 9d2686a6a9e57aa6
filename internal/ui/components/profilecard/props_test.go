package profilecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/lenscard/internal/model"
)

func TestPropsIdentifierTrims(t *testing.T) {
	p := Props{ProfileID: " 0x01 ", EthereumAddress: ""}
	assert.Equal(t, model.Identifier{ProfileID: "0x01"}, p.Identifier())
}

func TestValidateOnClick(t *testing.T) {
	assert.NoError(t, ValidateOnClick(""))
	assert.NoError(t, ValidateOnClick("onCard"))
	assert.NoError(t, ValidateOnClick("app.cards.$open"))
	assert.ErrorIs(t, ValidateOnClick("alert(1)"), ErrInvalidOnClick)
	assert.ErrorIs(t, ValidateOnClick("a..b"), ErrInvalidOnClick)
}

func TestValidateOnClickRejectsBuiltins(t *testing.T) {
	for _, name := range []string{
		"eval",
		"Function",
		"location.assign",
		"window.location.replace",
		"document.write.call",
		"setTimeout",
		"app.constructor",
		"open",
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateOnClick(name), ErrInvalidOnClick)
		})
	}
	assert.NoError(t, ValidateOnClick("app.openProfile"))
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("width: 100%; border-radius: 0 ;")
	require.NoError(t, err)
	assert.Equal(t, Style{{"width", "100%"}, {"border-radius", "0"}}, s)

	s, err = ParseStyle("  ")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestParseStyleRejectsUnsafeValues(t *testing.T) {
	for _, in := range []string{
		"background: url(https://evil.example)",
		`width: 1px" onmouseover="x`,
		"width",
		"wi dth: 1px",
		"color: red</style>",
	} {
		_, err := ParseStyle(in)
		assert.ErrorIs(t, err, ErrInvalidStyle, in)
	}
}
