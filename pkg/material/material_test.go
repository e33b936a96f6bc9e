package material

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestNewMaterial_Defaults(t *testing.T) {
	m := NewMaterial()

	if m.Color != core.White() {
		t.Errorf("Expected white, got %v", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected default coefficients %+v", m)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Default material should be valid: %v", err)
	}
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Material)
		wantErr bool
	}{
		{"zero ambient", func(m *Material) { m.Ambient = 0 }, false},
		{"negative ambient", func(m *Material) { m.Ambient = -0.1 }, true},
		{"negative diffuse", func(m *Material) { m.Diffuse = -1 }, true},
		{"negative specular", func(m *Material) { m.Specular = -0.5 }, true},
		{"negative shininess", func(m *Material) { m.Shininess = -10 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMaterial()
			tt.modify(&m)
			err := m.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}
