package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"transfer": map[string]any{
			"pushChunkSize": 0,
		},
		"adDispatch": map[string]any{
			"defaultVideo": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "TRANSFER_PUSHCHUNKSIZE", want: "transfer.pushChunkSize"},
		{envKey: "ADDISPATCH_DEFAULTVIDEO", want: "adDispatch.defaultVideo"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsTransferAndDispatchSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.AdDispatch.DefaultVideo != defaultVideoFilename {
		t.Fatalf("DefaultVideo = %q, want %q", cfg.AdDispatch.DefaultVideo, defaultVideoFilename)
	}
	if cfg.Transfer.PushChunkSize != defaultPushChunkSize {
		t.Fatalf("PushChunkSize = %d, want %d", cfg.Transfer.PushChunkSize, defaultPushChunkSize)
	}
	if cfg.Transfer.MinPullChunkSize != defaultMinPullChunkSize || cfg.Transfer.MaxPullChunkSize != defaultMaxPullChunkSize {
		t.Fatalf("pull clamp = [%d, %d], want [%d, %d]",
			cfg.Transfer.MinPullChunkSize, cfg.Transfer.MaxPullChunkSize,
			defaultMinPullChunkSize, defaultMaxPullChunkSize)
	}
	if cfg.Transfer.MaxChunkCount != defaultMaxChunkCount {
		t.Fatalf("MaxChunkCount = %d, want %d", cfg.Transfer.MaxChunkCount, defaultMaxChunkCount)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		AdDispatch: &AdDispatchConfig{DefaultVideo: "fallback.mp4"},
		Transfer:   &TransferConfig{PushChunkSize: 1024},
	}
	applyDefaults(cfg)

	if cfg.AdDispatch.DefaultVideo != "fallback.mp4" {
		t.Fatalf("DefaultVideo = %q, want fallback.mp4", cfg.AdDispatch.DefaultVideo)
	}
	if cfg.Transfer.PushChunkSize != 1024 {
		t.Fatalf("PushChunkSize = %d, want 1024", cfg.Transfer.PushChunkSize)
	}
}
