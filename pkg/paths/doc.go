// Package paths resolves the directories stampstore works with.
//
// # Environment Variables
//
//   - STAMPSTORE_ROOT: storage root (default: $XDG_DATA_HOME/stampstore)
//   - STAMPSTORE_CONFIG_DIR: config directory (default: $XDG_CONFIG_HOME/stampstore)
//   - STAMPSTORE_STATE_DIR: state directory, holds the log file
//     (default: $XDG_STATE_HOME/stampstore)
//
// An explicit root passed to New wins over STAMPSTORE_ROOT.
package paths
