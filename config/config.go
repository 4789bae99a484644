package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	// Transfer protocol defaults and hard limits.
	defaultPushChunkSize    = 10 * 1024 * 1024        // 10 MiB for server-initiated pushes.
	defaultMinPullChunkSize = 1 * 1024 * 1024         // 1 MiB lower clamp for device pulls.
	defaultMaxPullChunkSize = 50 * 1024 * 1024        // 50 MiB upper clamp for device pulls.
	defaultMaxFileSize      = 10 * 1024 * 1024 * 1024 // 10 GiB hard cap per asset.
	defaultMaxChunkCount    = 10000
	defaultUploadSessionTTL = 30 * time.Minute

	defaultVideoFilename    = "default_ad_loop.mp4"
	defaultGeofenceSegments = 16
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// AdDispatch configuration for the location-triggered decision engine
	AdDispatch *AdDispatchConfig `json:"adDispatch" yaml:"adDispatch"`

	// Transfer configuration for the chunked upload/download protocol
	Transfer *TransferConfig `json:"transfer" yaml:"transfer"`

	// PubSub configuration for playback event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AdDispatchConfig defines configuration for the ad decision engine
type AdDispatchConfig struct {
	// Filename devices loop locally when no campaign matches or a campaign is
	// withdrawn underneath them
	DefaultVideo string `json:"defaultVideo" yaml:"defaultVideo"`

	// Number of polygon segments used to approximate circular geofences
	GeofenceSegments int `json:"geofenceSegments" yaml:"geofenceSegments"`
}

// TransferConfig defines configuration for chunked asset transfer
type TransferConfig struct {
	// Directory holding in-flight upload chunks, one subdirectory per session token
	UploadDir string `json:"uploadDir" yaml:"uploadDir"`

	// Directory holding merged, servable video assets
	VideoDir string `json:"videoDir" yaml:"videoDir"`

	// Hard cap on a single asset's total size in bytes
	MaxFileSize int64 `json:"maxFileSize" yaml:"maxFileSize"`

	// Hard cap on the chunk count negotiated at init
	MaxChunkCount int `json:"maxChunkCount" yaml:"maxChunkCount"`

	// Chunk size used for server-initiated download pushes
	PushChunkSize int64 `json:"pushChunkSize" yaml:"pushChunkSize"`

	// Clamp range for device-requested pull chunk sizes
	MinPullChunkSize int64 `json:"minPullChunkSize" yaml:"minPullChunkSize"`
	MaxPullChunkSize int64 `json:"maxPullChunkSize" yaml:"maxPullChunkSize"`

	// Upload sessions idle longer than this are garbage collected
	SessionTTL time.Duration `json:"sessionTTL" yaml:"sessionTTL"`

	// Accepted video file extensions (lowercase, with leading dot)
	AllowedExtensions []string `json:"allowedExtensions" yaml:"allowedExtensions"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// applyDefaults fills the ad dispatch and transfer sections with the protocol
// defaults when the YAML leaves them unset.
func applyDefaults(cfg *Config) {
	if cfg.AdDispatch == nil {
		cfg.AdDispatch = &AdDispatchConfig{}
	}
	if cfg.AdDispatch.DefaultVideo == "" {
		cfg.AdDispatch.DefaultVideo = defaultVideoFilename
	}
	if cfg.AdDispatch.GeofenceSegments <= 0 {
		cfg.AdDispatch.GeofenceSegments = defaultGeofenceSegments
	}

	if cfg.Transfer == nil {
		cfg.Transfer = &TransferConfig{}
	}
	if cfg.Transfer.UploadDir == "" {
		cfg.Transfer.UploadDir = "data/uploads"
	}
	if cfg.Transfer.VideoDir == "" {
		cfg.Transfer.VideoDir = "data/videos"
	}
	if cfg.Transfer.MaxFileSize <= 0 {
		cfg.Transfer.MaxFileSize = defaultMaxFileSize
	}
	if cfg.Transfer.MaxChunkCount <= 0 {
		cfg.Transfer.MaxChunkCount = defaultMaxChunkCount
	}
	if cfg.Transfer.PushChunkSize <= 0 {
		cfg.Transfer.PushChunkSize = defaultPushChunkSize
	}
	if cfg.Transfer.MinPullChunkSize <= 0 {
		cfg.Transfer.MinPullChunkSize = defaultMinPullChunkSize
	}
	if cfg.Transfer.MaxPullChunkSize <= 0 {
		cfg.Transfer.MaxPullChunkSize = defaultMaxPullChunkSize
	}
	if cfg.Transfer.SessionTTL <= 0 {
		cfg.Transfer.SessionTTL = defaultUploadSessionTTL
	}
	if len(cfg.Transfer.AllowedExtensions) == 0 {
		cfg.Transfer.AllowedExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".webm"}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
