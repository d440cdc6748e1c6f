package steps

import (
	"testing"

	"github.com/systemstart/dataflow-kit/pkg/api"
)

func TestNewStep(t *testing.T) {
	tests := []struct {
		name    string
		cfg     api.StepConfig
		wantErr bool
	}{
		{
			name: "command step",
			cfg: api.StepConfig{
				Name:    "configure",
				Type:    api.StepTypeCommand,
				Command: &api.CommandConfig{Executable: "cmake"},
			},
		},
		{
			name: "package step",
			cfg: api.StepConfig{
				Name:    "build-runtime",
				Type:    api.StepTypePackage,
				Package: &api.PackageConfig{Name: "dora-runtime"},
			},
		},
		{
			name: "dataflow step",
			cfg: api.StepConfig{
				Name:     "run-dataflow",
				Type:     api.StepTypeDataflow,
				Dataflow: &api.DataflowConfig{Descriptor: "dataflow.yml"},
			},
		},
		{
			name: "unknown type",
			cfg: api.StepConfig{
				Name: "bad",
				Type: "unknown",
			},
			wantErr: true,
		},
	}

	deps := Deps{Exec: &recordingExecutor{}, Dataflow: &recordingDataflowRunner{}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, err := NewStep(tt.cfg, deps)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewStep() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				if step == nil {
					t.Fatal("expected non-nil step")
				}
				if step.Name() != tt.cfg.Name {
					t.Errorf("Name() = %q, want %q", step.Name(), tt.cfg.Name)
				}
			}
		})
	}
}
