package flagx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var serverFlags = []string{"-a", "-d", "-s", "-v"}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "adminctl flags are dropped for the server parser",
			args:    []string{"-email", "root@example.com", "-role", "admin", "-d", "memory"},
			allowed: serverFlags,
			want:    []string{"-d", "memory"},
		},
		{
			name:    "server flags are dropped for the adminctl parser",
			args:    []string{"-d", "postgres://db/adminauth", "-email", "root@example.com", "-v", "debug"},
			allowed: []string{"-email", "-role"},
			want:    []string{"-email", "root@example.com"},
		},
		{
			name:    "equals form",
			args:    []string{"-a=:50051", "-x=1"},
			allowed: serverFlags,
			want:    []string{"-a=:50051"},
		},
		{
			name:    "value may contain an equals sign",
			args:    []string{"-d=postgres://u:p@db/a?sslmode=disable"},
			allowed: serverFlags,
			want:    []string{"-d=postgres://u:p@db/a?sslmode=disable"},
		},
		{
			name:    "positional command word is ignored",
			args:    []string{"unlock", "-v", "warn"},
			allowed: serverFlags,
			want:    []string{"-v", "warn"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-s"},
			allowed: serverFlags,
			want:    []string{"-s"},
		},
		{
			name:    "dash token is not taken as a value",
			args:    []string{"-s", "-v", "info"},
			allowed: serverFlags,
			want:    []string{"-s", "-v", "info"},
		},
		{
			name:    "repeated flag keeps order",
			args:    []string{"-v", "info", "-v", "debug"},
			allowed: serverFlags,
			want:    []string{"-v", "info", "-v", "debug"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", ":1"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short form", []string{"unlock", "-c", "/etc/adminauth.json"}, "/etc/adminauth.json"},
		{"long form", []string{"-config", "adminauth.json", "-d", "memory"}, "adminauth.json"},
		{"equals form", []string{"-config=/etc/a.json"}, "/etc/a.json"},
		{"absent", []string{"-d", "memory"}, ""},
		{"last wins", []string{"-c", "one.json", "-config", "two.json"}, "two.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
