package nhl

import "testing"

func TestUnwrapScoreboard(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "wrapped payload",
			body: `loadScoreboard({"games":[]})`,
			want: `{"games":[]}`,
		},
		{
			name: "surrounding whitespace",
			body: "  loadScoreboard({\"games\":[]})\n",
			want: `{"games":[]}`,
		},
		{
			name:    "bare json rejected",
			body:    `{"games":[]}`,
			wantErr: true,
		},
		{
			name:    "wrong function name rejected",
			body:    `loadSomethingElse({"games":[]})`,
			wantErr: true,
		},
		{
			name:    "missing closing paren",
			body:    `loadScoreboard({"games":[]}`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: true,
		},
		{
			name:    "empty wrapper",
			body:    `loadScoreboard()`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, err := unwrapScoreboard([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("unwrapScoreboard(%q) expected error, got %q", tt.body, inner)
				}
				return
			}
			if err != nil {
				t.Fatalf("unwrapScoreboard(%q) unexpected error: %v", tt.body, err)
			}
			if string(inner) != tt.want {
				t.Errorf("unwrapScoreboard(%q) = %q, want %q", tt.body, inner, tt.want)
			}
		})
	}
}
