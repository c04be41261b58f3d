package commands

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "A timestamp-keyed record store on the local filesystem"
	MsgVersionShort   = "Print version information"
	MsgVersionLong    = "Print detailed version information including commit hash and build date"
	MsgPutShort       = "Store a JSON document under a key"
	MsgGetShort       = "Print the record stored under a key"
	MsgDeleteShort    = "Delete the record stored under a key"
	MsgClearShort     = "Delete every record under the storage root"
	MsgExistsShort    = "Report whether a key has a record"
	MsgKeyShort       = "Print the storage key for a moment in time"
	MsgGenConfigShort = "Print the default configuration file"
	MsgDiaryShort     = "Manage diary entries"
	MsgDiaryAddShort  = "Add a diary entry"
	MsgDiaryShowShort = "Show diary entries"

	// Status messages
	MsgStoredFormat     = "Stored %s\n"
	MsgDeletedFormat    = "Deleted %s\n"
	MsgClearedFormat    = "Cleared %s\n"
	MsgClearAborted     = "Nothing was deleted."
	MsgClearConfirm     = "Delete every record under %s?"
	MsgMemoryNotice     = "(in-memory store, nothing was written to disk)"
	MsgDiaryLineFormat  = "%s  %s  %-9s  %s\n"
	MsgDiaryLoadWarning = "skipping %s: %v\n"

	// Version output
	MsgVersionFormat = "stampstore version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrReadInput    = "failed to read input: %w"
	MsgErrInvalidJSON  = "input is not a valid JSON document"
	MsgErrParseTime    = "invalid --at time %q, expected RFC3339"
	MsgErrClearNeedYes = "refusing to clear a non-interactive session without --yes"
	MsgErrNoEntries    = "no diary entries could be loaded"
)

// Flag descriptions
const (
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot       = "Storage root directory (overrides config and STAMPSTORE_ROOT)"
	MsgFlagConfig     = "Configuration file (default $XDG_CONFIG_HOME/stampstore/config.toml)"
	MsgFlagMemory     = "Use an in-memory store; nothing touches the disk"
	MsgFlagYes        = "Do not ask for confirmation"
	MsgFlagAt         = "Time to derive the key from, in RFC3339 (default now)"
	MsgFlagPretty     = "Indent JSON output (default when stdout is a terminal)"
	MsgFlagEmotion    = "Emotion of the entry"
	MsgFlagSummary    = "Summary text of the entry"
	MsgFlagTranscript = "Full transcript of the entry"
)
