package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install Claude agent and command collections as symlinks"
	MsgInstallShort    = "Sync collections and link their files"
	MsgSetupShort      = "Install a single collection without prompting"
	MsgRemoveShort     = "Remove the symlinks of one or all collections"
	MsgStatusShort     = "Show what is installed"
	MsgDoctorShort     = "Check the environment"
	MsgInfoShort       = "Describe a collection"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice  = "DRY RUN MODE - no changes were made"
	MsgCancelled     = "Removal cancelled"
	MsgNothingBroken = "No broken symlinks"
	MsgBrokenHeader  = "Broken symlinks"
	MsgPrunedFormat  = "Removed empty directory %s"
	MsgHealthy       = "Everything looks good"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrFormat    = "invalid --format value"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Preview changes without executing them"
	MsgFlagConfig     = "Read configuration from this TOML file"
	MsgFlagNoColor    = "Disable colored output"
	MsgFlagFormat     = "Output format: auto, terminal, text or json"
	MsgFlagComponents = "Collections to install (comma separated, or all)"
	MsgFlagYes        = "Answer yes to every confirmation"
	MsgFlagNoSync     = "Do not clone or update repositories"
	MsgFlagLinks      = "List every installed link"
	MsgFlagTemplate   = "Print a commented configuration template instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/remove-example.txt
	msgRemoveExampleRaw string
	MsgRemoveExample    = strings.TrimRight(msgRemoveExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/doctor-long.txt
	msgDoctorLongRaw string
	MsgDoctorLong    = strings.TrimSpace(msgDoctorLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
