package screens

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"greenroom/controller"
	"greenroom/internal/config"
)

// SettingsController is a sheet form over the config file. Changes apply on
// enter; esc abandons them.
type SettingsController struct {
	controller.ViewController

	cfg     config.Config
	onApply func(config.Config)
}

func NewSettings(cfg config.Config, onApply func(config.Config)) *SettingsController {
	s := &SettingsController{cfg: cfg, onApply: onApply}
	s.Extend(s)
	s.SetTitle("settings")
	return s
}

func (s *SettingsController) ContentView() controller.Content {
	return controller.ContentFunc(func(ctx controller.RenderContext) string {
		var b strings.Builder
		b.WriteString(titleStyle.Render("Settings") + "\n\n")
		b.WriteString(fmt.Sprintf("theme      %s\n", s.cfg.UI.Theme))
		b.WriteString(fmt.Sprintf("page size  %d\n\n", s.cfg.UI.PageSize))
		b.WriteString(dimStyle.Render("t theme · +/- page size · enter save · esc cancel"))
		return b.String()
	})
}

func (s *SettingsController) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "t":
		if s.cfg.UI.Theme == "dark" {
			s.cfg.UI.Theme = "light"
		} else {
			s.cfg.UI.Theme = "dark"
		}
		s.Changed().Emit()
		return nil, true
	case "+", "=":
		s.cfg.UI.PageSize++
		s.Changed().Emit()
		return nil, true
	case "-":
		if s.cfg.UI.PageSize > 1 {
			s.cfg.UI.PageSize--
			s.Changed().Emit()
		}
		return nil, true
	case "enter":
		if err := config.Save(s.cfg); err != nil {
			slog.Warn("save config failed", "err", err)
		}
		s.onApply(s.cfg)
		s.Dismiss()
		return nil, true
	}
	return nil, false
}
