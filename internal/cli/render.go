package cli

import (
	"fmt"
	"strconv"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/commands"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/paths"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/ui"
)

func (a *app) renderInstall(r *commands.InstallResult) error {
	c := a.console
	if c.JSON() {
		return c.WriteJSON(r)
	}

	c.Header("Summary")
	for _, ci := range r.Collections {
		name := displayName(ci.Name, ci.Key)
		switch {
		case ci.Declined:
			c.Muted(fmt.Sprintf("%s: declined", name))
		case ci.Error != "" && ci.Result == nil:
			c.Println(fmt.Sprintf("%s: failed", name))
		default:
			c.Println(fmt.Sprintf("%s: %s", name, ui.CreateSummary(ci.Result)))
		}
	}
	c.Println(fmt.Sprintf("Total: %s", ui.CreateSummary(r.Totals())))

	if r.DryRun {
		c.Muted(MsgDryRunNotice)
	}
	return nil
}

func (a *app) renderRemove(r *commands.RemoveResult) error {
	c := a.console
	if c.JSON() {
		return c.WriteJSON(r)
	}
	if r.Cancelled {
		c.Muted(MsgCancelled)
		return nil
	}

	c.Header("Summary")
	for _, cr := range r.Collections {
		name := displayName(cr.Name, cr.Key)
		if cr.Result == nil {
			c.Println(fmt.Sprintf("%s: failed", name))
			continue
		}
		c.Println(fmt.Sprintf("%s: %s", name, ui.RemoveSummary(cr.Result)))
	}
	c.Println(fmt.Sprintf("Total: %s", ui.RemoveSummary(r.Totals)))
	for _, dir := range r.PrunedDirs {
		c.Muted(fmt.Sprintf(MsgPrunedFormat, dir))
	}

	if r.DryRun {
		c.Muted(MsgDryRunNotice)
	}
	return nil
}

func (a *app) renderStatus(r *commands.StatusResult) error {
	c := a.console
	if c.JSON() {
		return c.WriteJSON(r)
	}

	c.Muted(fmt.Sprintf("Managed root: %s", r.Root))
	c.Muted(fmt.Sprintf("Sources:      %s", r.SourcesDir))

	rows := make([][]string, 0, len(r.Collections))
	for _, cs := range r.Collections {
		source := "present"
		if !cs.SourcePresent {
			source = "missing"
		}
		rows = append(rows, []string{
			cs.Key,
			cs.Name,
			source,
			strconv.Itoa(cs.Available),
			strconv.Itoa(cs.Installed),
			strconv.Itoa(cs.Broken),
		})
	}
	if err := c.Table([]string{"Key", "Collection", "Source", "Available", "Installed", "Broken"}, rows); err != nil {
		return err
	}

	for _, cs := range r.Collections {
		if len(cs.Links) == 0 {
			continue
		}
		c.Header(cs.Name)
		for _, l := range cs.Links {
			line := fmt.Sprintf("  %s -> %s", l.DisplayName, l.Target)
			if l.Broken {
				line += " (broken)"
			}
			c.Println(line)
		}
	}

	if len(r.Broken) == 0 {
		c.Muted(MsgNothingBroken)
		return nil
	}
	c.Header(MsgBrokenHeader)
	for _, l := range r.Broken {
		name := l.Path
		if rel, err := paths.RelativePath(r.Root, l.Path); err == nil {
			name = rel
		}
		c.Println(fmt.Sprintf("  %s -> %s", name, l.Target))
	}
	return nil
}

func (a *app) renderDoctor(r *commands.DoctorResult) error {
	c := a.console
	if c.JSON() {
		return c.WriteJSON(r)
	}

	for _, check := range r.Checks {
		msg := fmt.Sprintf("%s: %s", check.Name, check.Message)
		switch check.Level {
		case commands.CheckOK:
			c.Success(msg)
		case commands.CheckWarn:
			c.Warn(msg)
		case commands.CheckFail:
			c.Error(msg)
		}
	}
	if r.Healthy {
		c.Println(MsgHealthy)
	}
	return nil
}

func (a *app) renderInfo(key, md string) error {
	c := a.console
	if c.JSON() {
		return c.WriteJSON(struct {
			Key      string `json:"key"`
			Markdown string `json:"markdown"`
		}{key, md})
	}
	c.Markdown(md)
	return nil
}

func displayName(name, key string) string {
	if name == "" {
		return key
	}
	return name
}
