package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag followed by another flag keeps no value",
			args:         []string{"-env", "-a", "http://x"},
			allowedFlags: []string{"-env"},
			want:         []string{"-env"},
		},
		{
			name:         "nil args",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestStringFlag(t *testing.T) {
	assert.Equal(t, "conf.json", StringFlag([]string{"-a", "x", "-c", "conf.json"}, "c", "config"))
	assert.Equal(t, "other.json", StringFlag([]string{"--config=other.json"}, "c", "config"))
	assert.Equal(t, "", StringFlag([]string{"-a", "x"}, "c", "config"))
	assert.Equal(t, "prod.env", StringFlag([]string{"-env", "prod.env", "-t", "5"}, "env"))
}

func TestJsonConfigFlagsAndEnvFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"uniswap", "-config", "cfg.json", "-env", ".env.local", "-a", "http://api"}
	assert.Equal(t, "cfg.json", JsonConfigFlags())
	assert.Equal(t, ".env.local", EnvFileFlag())

	os.Args = []string{"uniswap"}
	assert.Equal(t, "", JsonConfigFlags())
	assert.Equal(t, "", EnvFileFlag())
}
