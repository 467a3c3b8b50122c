package cmdtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gdxinit/cli/internal/config"
)

func TestGlobalConfig_Settings(t *testing.T) {
	var nilCfg *GlobalConfig
	assert.Equal(t, config.DefaultConfig(), nilCfg.Settings())
	assert.Equal(t, config.DefaultConfig(), (&GlobalConfig{}).Settings())

	loaded := config.DefaultConfig()
	loaded.GodotVersion = "4.3"
	assert.Same(t, loaded, (&GlobalConfig{Config: loaded}).Settings())
}
