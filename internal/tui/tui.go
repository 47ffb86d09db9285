package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/internal/service"
	"github.com/MKhiriev/go-list-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	controller service.ListController
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

func New(controller service.ListController, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if controller == nil {
		return nil, errNoController
	}

	return &TUI{controller: controller, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the list screen until the user quits or ctx is done. Controller
// snapshots are forwarded to the screen for as long as it runs.
func (t *TUI) Run(ctx context.Context) error {
	model := newListModel(ctx, t.controller, t.buildInfo)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.controller.Subscribe(func(s models.ListSnapshot) {
		p.Send(snapshotMsg{snapshot: s})
	})
	defer unsubscribe()

	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Debug().Str("func", "*TUI.Run").Msg("ui stopped by context")
		return nil
	}

	return err
}
