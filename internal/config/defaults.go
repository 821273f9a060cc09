package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"transport": TransportTelegram,
		"timezone":  "UTC",
		"telegram": map[string]interface{}{
			"bot_token": "",
		},
		"slack": map[string]interface{}{
			"bot_token":      "",
			"signing_secret": "",
		},
		"server": map[string]interface{}{
			"port": 3000,
		},
		"store": map[string]interface{}{
			"driver":     "json",
			"path":       "", // resolved per driver
			"on_corrupt": "reset",
		},
		"scheduler": map[string]interface{}{
			"send_timeout": "30s",
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}
