package plugin

import "testing"

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		version string
		want    bool
		wantErr bool
	}{
		{version: "1.0.0", want: true},
		{version: "1.2.3", want: true},
		{version: "v1.0.1", want: true},
		{version: "0.9.0", wantErr: true},
		{version: "2.0.0", wantErr: true},
		{version: "not-a-version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := IsCompatible(tt.version)
			if (err != nil) != tt.wantErr {
				t.Fatalf("IsCompatible(%q) error = %v, wantErr %v", tt.version, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("IsCompatible(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}
