package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyTopics        = "model.topics"
	keyTopWords      = "model.top_words"
	keyEstimator     = "model.estimator"
	keySeed          = "model.seed"
	keyIterations    = "model.iterations"
	keyAlpha         = "model.alpha"
	keyEta           = "model.eta"
	keyFoldAccents   = "cleaning.fold_accents"
	keyStopwordsFile = "cleaning.stopwords_file"
	keyTextColumn    = "ingest.text_column"
	keySplitWords    = "ingest.split_words"
	keyMinWords      = "ingest.min_words"
	keyServerAddr    = "server.addr"
	keyChartWidth    = "server.chart_width"
	keyChartHeight   = "server.chart_height"
)

type settingKind int

const (
	kindInt settingKind = iota
	kindPositiveInt
	kindFloat
	kindBool
	kindString
	kindEstimator
)

// settingKeys lists every settable key in display order.
var settingKeys = []struct {
	key  string
	kind settingKind
}{
	{keyTopics, kindPositiveInt},
	{keyTopWords, kindPositiveInt},
	{keyEstimator, kindEstimator},
	{keySeed, kindInt},
	{keyIterations, kindPositiveInt},
	{keyAlpha, kindFloat},
	{keyEta, kindFloat},
	{keyFoldAccents, kindBool},
	{keyStopwordsFile, kindString},
	{keyTextColumn, kindInt},
	{keySplitWords, kindInt},
	{keyMinWords, kindInt},
	{keyServerAddr, kindString},
	{keyChartWidth, kindString},
	{keyChartHeight, kindString},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	d := domain.DefaultSettings()

	settings := &domain.Settings{
		Model: domain.ModelSettings{
			NumTopics:  s.getPositiveInt(keyTopics, d.Model.NumTopics),
			TopWords:   s.getPositiveInt(keyTopWords, d.Model.TopWords),
			Estimator:  s.getEstimator(d.Model.Estimator),
			Seed:       uint64(s.getNonNegativeInt(keySeed, int(d.Model.Seed))),
			Iterations: s.getPositiveInt(keyIterations, d.Model.Iterations),
			Alpha:      s.getFloat(keyAlpha, d.Model.Alpha),
			Eta:        s.getFloat(keyEta, d.Model.Eta),
		},
		Cleaning: domain.CleaningSettings{
			FoldAccents:   s.getBool(keyFoldAccents, d.Cleaning.FoldAccents),
			StopwordsFile: s.getString(keyStopwordsFile, d.Cleaning.StopwordsFile),
		},
		Ingest: domain.IngestSettings{
			TextColumn: s.getNonNegativeInt(keyTextColumn, d.Ingest.TextColumn),
			SplitWords: s.getNonNegativeInt(keySplitWords, d.Ingest.SplitWords),
			MinWords:   s.getNonNegativeInt(keyMinWords, d.Ingest.MinWords),
		},
		Server: domain.ServerSettings{
			Addr:        s.getString(keyServerAddr, d.Server.Addr),
			ChartWidth:  s.getString(keyChartWidth, d.Server.ChartWidth),
			ChartHeight: s.getString(keyChartHeight, d.Server.ChartHeight),
		},
	}

	return settings, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Keys returns every settable key in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	for i, k := range settingKeys {
		keys[i] = k.key
	}
	return keys
}

// Lookup returns the effective value of key.
func (s *SettingsService) Lookup(key string) (string, error) {
	if _, err := kindOf(key); err != nil {
		return "", err
	}
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case keyTopics:
		return strconv.Itoa(settings.Model.NumTopics), nil
	case keyTopWords:
		return strconv.Itoa(settings.Model.TopWords), nil
	case keyEstimator:
		return settings.Model.Estimator.String(), nil
	case keySeed:
		return strconv.FormatUint(settings.Model.Seed, 10), nil
	case keyIterations:
		return strconv.Itoa(settings.Model.Iterations), nil
	case keyAlpha:
		return formatPrior(settings.Model.Alpha), nil
	case keyEta:
		return formatPrior(settings.Model.Eta), nil
	case keyFoldAccents:
		return strconv.FormatBool(settings.Cleaning.FoldAccents), nil
	case keyStopwordsFile:
		return settings.Cleaning.StopwordsFile, nil
	case keyTextColumn:
		return strconv.Itoa(settings.Ingest.TextColumn), nil
	case keySplitWords:
		return strconv.Itoa(settings.Ingest.SplitWords), nil
	case keyMinWords:
		return strconv.Itoa(settings.Ingest.MinWords), nil
	case keyServerAddr:
		return settings.Server.Addr, nil
	case keyChartWidth:
		return settings.Server.ChartWidth, nil
	default:
		return settings.Server.ChartHeight, nil
	}
}

// Set parses value according to the key's type and persists it.
func (s *SettingsService) Set(key, value string) error {
	kind, err := kindOf(key)
	if err != nil {
		return err
	}

	var parsed any
	switch kind {
	case kindInt, kindPositiveInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		if n < 0 || (kind == kindPositiveInt && n < 1) {
			return fmt.Errorf("%w: %s out of range: %d", domain.ErrInvalidInput, key, n)
		}
		parsed = int64(n)
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		parsed = f
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	case kindEstimator:
		if !domain.Estimator(value).IsValid() {
			return fmt.Errorf("%w: estimator %q", domain.ErrUnsupportedType, value)
		}
		parsed = value
	default:
		parsed = value
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reset removes a stored value so the default applies again.
func (s *SettingsService) Reset(key string) error {
	if _, err := kindOf(key); err != nil {
		return err
	}
	if err := s.configStore.Delete(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

func kindOf(key string) (settingKind, error) {
	for _, k := range settingKeys {
		if k.key == key {
			return k.kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
}

// formatPrior shows 0 as "auto" since zero means 1/K.
func formatPrior(v float64) string {
	if v == 0 {
		return "auto"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Helper methods for reading config values with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getNonNegativeInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	if val := s.configStore.GetInt(key); val >= 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	if val := s.configStore.GetFloat(key); val >= 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getEstimator(defaultVal domain.Estimator) domain.Estimator {
	if e := domain.Estimator(s.configStore.GetString(keyEstimator)); e.IsValid() {
		return e
	}
	return defaultVal
}
