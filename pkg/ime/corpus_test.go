package ime

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type typingCase struct {
	Name string `yaml:"name"`
	Keys string `yaml:"keys"`
	Want string `yaml:"want"`
}

func TestTypingCorpus(t *testing.T) {
	data, err := os.ReadFile("testdata/typing.yaml")
	require.NoError(t, err)

	var cases []typingCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Want, Translate(tc.Keys))
		})
	}
}
