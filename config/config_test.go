// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	content := []byte("min-search-length: 8\nmatch-percent-threshold: 42.5\nprogress: true\n")
	if err := os.WriteFile(settings, content, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		set     map[string]interface{}
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			"defaults",
			nil,
			nil,
			&Config{
				MinSearchLength:       DefaultMinSearchLength,
				FragmentMatchLength:   DefaultFragmentMatchLength,
				MatchPercentThreshold: DefaultMatchPercentThreshold,
			},
			false,
		},
		{
			"settings file",
			map[string]interface{}{"settings": settings},
			nil,
			&Config{
				MinSearchLength:       8,
				FragmentMatchLength:   DefaultFragmentMatchLength,
				MatchPercentThreshold: 42.5,
				Progress:              true,
			},
			false,
		},
		{
			"environment",
			nil,
			map[string]string{"GENOMATCH_MIN_SEARCH_LENGTH": "12", "GENOMATCH_WORKERS": "3"},
			&Config{
				MinSearchLength:       12,
				FragmentMatchLength:   DefaultFragmentMatchLength,
				MatchPercentThreshold: DefaultMatchPercentThreshold,
				Workers:               3,
			},
			false,
		},
		{
			"fragment length below the search length",
			map[string]interface{}{"fragment-match-length": 4},
			nil,
			nil,
			true,
		},
		{
			"threshold above 100",
			map[string]interface{}{"match-percent-threshold": 101},
			nil,
			nil,
			true,
		},
		{
			"missing settings file",
			map[string]interface{}{"settings": filepath.Join(t.TempDir(), "missing.yaml")},
			nil,
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, val := range tt.env {
				t.Setenv(k, val)
			}

			v := viper.New()
			SetDefaults(v)
			for k, val := range tt.set {
				v.Set(k, val)
			}

			got, err := Load(v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
