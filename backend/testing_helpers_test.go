package main

import "testing"

// withConfig swaps the global config for the duration of a test.
func withConfig(t *testing.T, mutate func(*Config)) {
	t.Helper()
	prev := GetConfig()
	cfg := prev
	cfg.AiMoveDelayMs = 0
	mutate(&cfg)
	configStore.Update(cfg)
	t.Cleanup(func() {
		configStore.Update(prev)
	})
}

func humanVsHuman() GameSettings {
	settings := DefaultGameSettings()
	settings.BlackType = PlayerHuman
	settings.WhiteType = PlayerHuman
	return settings
}
