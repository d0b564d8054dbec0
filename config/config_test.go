package config

import (
	"reflect"
	"testing"

	"ArxivWeekly/internal/category"
)

func TestReportConfig_CategorySet(t *testing.T) {
	tests := []struct {
		name       string
		categories string
		want       category.Set
	}{
		{"standard list", "cs.AI,cs.CL,cs.CV,cs.LG", category.Set{"cs.AI", "cs.CL", "cs.CV", "cs.LG"}},
		{"spaces trimmed", " cs.AI , cs.CV ", category.Set{"cs.AI", "cs.CV"}},
		{"empty entries dropped", "cs.AI,,cs.CV,", category.Set{"cs.AI", "cs.CV"}},
		{"empty string", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := ReportConfig{Categories: tt.categories}
			if got := rc.CategorySet(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CategorySet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReportConfig_UnmatchedPolicy(t *testing.T) {
	tests := []struct {
		name      string
		unmatched string
		want      category.Policy
	}{
		{"other", "other", category.PolicyOther},
		{"drop", "drop", category.PolicyDrop},
		{"drop uppercase", "DROP", category.PolicyDrop},
		{"unknown falls back to other", "whatever", category.PolicyOther},
		{"empty falls back to other", "", category.PolicyOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := ReportConfig{Unmatched: tt.unmatched}
			if got := rc.UnmatchedPolicy(); got != tt.want {
				t.Errorf("UnmatchedPolicy() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReportConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		wantErr bool
	}{
		{"default week", 7, false},
		{"single day", 1, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := ReportConfig{WindowDays: tt.days}
			err := rc.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFeishuConfig_Enabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  FeishuConfig
		want bool
	}{
		{"fully configured", FeishuConfig{AppID: "cli_x", AppSecret: "s", ReceiveID: "ou_y"}, true},
		{"no secret still enabled", FeishuConfig{AppID: "cli_x", ReceiveID: "ou_y"}, true},
		{"missing receive_id", FeishuConfig{AppID: "cli_x", AppSecret: "s"}, false},
		{"missing app_id", FeishuConfig{ReceiveID: "ou_y"}, false},
		{"empty", FeishuConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
