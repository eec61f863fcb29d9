package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "A build-time front end for ILMerge-style assembly merging"
	MsgVersionShort   = "Print version information"
	MsgVersionLong    = "Print detailed version information including commit hash and build date"
	MsgMergeShort     = "Order the inputs and run the merge tool"
	MsgPlanShort      = "Compute and print the merge order without merging"
	MsgLocateShort    = "Probe for the merge tool and print the trail"
	MsgGenConfigShort = "Write starter configuration files"

	// Status messages
	MsgFileWritten = "  ✓ %s\n"

	// Version output
	MsgVersionFormat = "ilweld version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat       = "Output format: auto, term, text, json or yaml"
	MsgFlagOut          = "Path of the merged output assembly"
	MsgFlagTarget       = "Kind of assembly to produce: exe, dll or winexe"
	MsgFlagKeyFile      = "Strong-name key file for signing the merged assembly"
	MsgFlagDelaySign    = "Delay-sign the merged assembly (requires --keyfile)"
	MsgFlagInternalize  = "Make non-primary types internal; optional value names an exclude file"
	MsgFlagUnion        = "Merge duplicate types into one instead of renaming"
	MsgFlagCopyAttrs    = "Copy assembly attributes from the inputs"
	MsgFlagAllowDup     = "Allow duplicate type names, renaming the duplicates"
	MsgFlagNDebug       = "Skip generating debug symbols for the merged assembly"
	MsgFlagXMLDocs      = "Merge the inputs' XML documentation files"
	MsgFlagClosed       = "Also merge assemblies the inputs depend on"
	MsgFlagWildcards    = "Allow wildcards in input file names"
	MsgFlagPlatform     = "Target platform, e.g. v4 or \"v4,C:/ref/dir\""
	MsgFlagVer          = "Version stamp for the merged assembly, e.g. 1.2.3.4"
	MsgFlagToolLog      = "Tool log file path"
	MsgFlagPackagesRoot = "NuGet packages directory; inputs under it form the library group"
	MsgFlagOrderFile    = "Order directive file (default ILMergeOrder.txt next to the primary)"
	MsgFlagNoRecord     = "Skip writing the .mergeorder record file"
	MsgFlagTool         = "Tool flavor: ilmerge or ilrepack"
	MsgFlagToolPath     = "Explicit path to the tool executable, skipping discovery"
	MsgFlagLib          = "Extra directory searched for references (repeatable)"
	MsgFlagDryRun       = "Stop after planning; never locate or run the tool"
	MsgFlagTimeout      = "Kill the tool after this long, e.g. 2m"
	MsgFlagGenDir       = "Directory to write the starter files into"
	MsgFlagGenOrder     = "Also write a starter order directive file"
	MsgFlagGenForce     = "Overwrite files that already exist"
	MsgFlagGenEffective = "Print the resolved configuration instead of writing files"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/merge-long.txt
	msgMergeLongRaw string
	MsgMergeLong    = strings.TrimSpace(msgMergeLongRaw)

	//go:embed msgs/merge-example.txt
	msgMergeExampleRaw string
	MsgMergeExample    = strings.TrimSpace(msgMergeExampleRaw)

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/plan-example.txt
	msgPlanExampleRaw string
	MsgPlanExample    = strings.TrimSpace(msgPlanExampleRaw)

	//go:embed msgs/locate-long.txt
	msgLocateLongRaw string
	MsgLocateLong    = strings.TrimSpace(msgLocateLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimSpace(msgGenConfigExampleRaw)
)
