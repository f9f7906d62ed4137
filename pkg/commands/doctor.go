package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/logging"
)

// CheckLevel grades a doctor check.
type CheckLevel string

const (
	CheckOK   CheckLevel = "ok"
	CheckWarn CheckLevel = "warn"
	CheckFail CheckLevel = "fail"
)

// Check is one doctor finding.
type Check struct {
	Name    string     `json:"name"`
	Level   CheckLevel `json:"level"`
	Message string     `json:"message"`
}

// DoctorResult lists every check in the order it ran.
type DoctorResult struct {
	Checks []Check `json:"checks"`
	// Healthy is false when any check failed. Warnings do not count.
	Healthy bool `json:"healthy"`
}

// GitProbe reports the installed git version.
type GitProbe interface {
	Available(ctx context.Context) (string, error)
}

func (r *DoctorResult) add(name string, level CheckLevel, format string, args ...interface{}) {
	r.Checks = append(r.Checks, Check{Name: name, Level: level, Message: fmt.Sprintf(format, args...)})
	if level == CheckFail {
		r.Healthy = false
	}
}

// Doctor inspects the environment without changing it. A nil git probe
// falls back to the env's Syncer when it can report availability.
func Doctor(ctx context.Context, env Env, git GitProbe) (*DoctorResult, error) {
	logger := logging.GetLogger("commands.doctor")
	logger.Debug().Msg("Starting doctor command")

	env, err := env.withDefaults()
	if err != nil {
		return nil, err
	}
	if git == nil {
		if probe, ok := env.Syncer.(GitProbe); ok {
			git = probe
		}
	}

	result := &DoctorResult{Healthy: true}

	switch {
	case git == nil:
		result.add("git", CheckWarn, "git check skipped")
	default:
		if version, err := git.Available(ctx); err != nil {
			logger.Warn().Err(err).Msg("git not available")
			result.add("git", CheckFail, "git not available: %v", err)
		} else {
			result.add("git", CheckOK, "%s", version)
		}
	}

	checkRoot(env, result)

	for _, c := range env.Registry.All() {
		source := env.sourceRoot(c)
		name := "source " + c.Key
		switch {
		case env.isDir(source):
			result.add(name, CheckOK, "%s", source)
		case c.IsRemote():
			result.add(name, CheckWarn, "%s is missing; install will clone %s", source, c.Repository)
		default:
			result.add(name, CheckWarn, "%s is missing", source)
		}
	}

	broken, err := env.engine().FindBrokenSymlinks()
	switch {
	case err != nil:
		result.add("broken links", CheckWarn, "scan failed: %v", err)
	case len(broken) > 0:
		result.add("broken links", CheckWarn, "%d broken symlinks; run remove to clean them up", len(broken))
	default:
		result.add("broken links", CheckOK, "none")
	}

	logger.Info().Bool("healthy", result.Healthy).Int("checks", len(result.Checks)).Msg("Doctor finished")
	if !result.Healthy {
		return result, errors.New(errors.ErrInternal, "doctor found problems")
	}
	return result, nil
}

// checkRoot reports whether the managed root exists and is writable. A
// missing root is fine as long as its nearest existing ancestor is
// writable, since install creates it.
func checkRoot(env Env, result *DoctorResult) {
	root := env.Layout.Root()
	info, err := env.FS.Stat(root)
	if err == nil && !info.IsDir() {
		result.add("managed root", CheckFail, "%s is not a directory", root)
		return
	}

	dir := root
	if err != nil {
		result.add("managed root", CheckWarn, "%s does not exist yet; install will create it", root)
		for {
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
			if env.isDir(dir) {
				break
			}
		}
	} else {
		result.add("managed root", CheckOK, "%s", root)
	}

	info, err = env.FS.Stat(dir)
	if err != nil || info.Mode().Perm()&0200 == 0 {
		result.add("writable", CheckFail, "%s is not writable", dir)
		return
	}
	result.add("writable", CheckOK, "%s", dir)
}
