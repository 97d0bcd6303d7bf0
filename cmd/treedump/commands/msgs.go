package commands

// Command descriptions
const (
	MsgRootShort = "Copy a build tree into an install tree without dangling symlinks"
	MsgRootLong  = `treedump replicates a source directory into a destination directory.

Symlinks whose target stays inside the destination are copied as links.
Symlinks that point outside it, or at an absolute path, are replaced by a
copy of what they point at, so the destination never depends on the
source tree. Links into the system C library are kept as they are.

See 'treedump help symlinks' for the exact rules.`

	MsgDumpShort   = "Replicate SOURCE into DEST"
	MsgDumpLong    = "Copy every entry of SOURCE into DEST, keeping symlinks that stay inside DEST and following the others. Existing content in DEST is kept unless an entry of the same name is copied over it."
	MsgDumpExample = `  treedump dump build/part install
  treedump dump --exclude '**/*.a' --exclude share/doc build/part install
  treedump dump --dry-run build/part install`

	MsgPlanShort   = "Show what dump would do, without writing"
	MsgPlanLong    = "List every entry of SOURCE with its destination and, for symlinks, whether the link is kept or followed."
	MsgPlanExample = `  treedump plan build/part install
  treedump plan --format json build/part install`

	MsgGenConfigShort   = "Print the effective configuration as TOML"
	MsgGenConfigLong    = "Print the configuration treedump would use, after reading every configuration file, TREEDUMP_* variable and flag. With --write the result is saved to ./.treedump.toml."
	MsgGenConfigExample = `  treedump genconfig
  treedump genconfig --defaults
  treedump genconfig -w`

	MsgVersionShort    = "Print version information"
	MsgManShort        = "Generate the man page"
	MsgCompletionShort = "Generate shell completion script"
)

// Flag descriptions
const (
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig         = "Read configuration from this file as well"
	MsgFlagDryRun         = "Show the plan instead of copying"
	MsgFlagExclude        = "Skip entries matching this pattern, relative to SOURCE (repeatable)"
	MsgFlagContainment    = "How link targets are tested against DEST: segment or prefix"
	MsgFlagLibraryPackage = "Package whose libraries links may point at"
	MsgFlagPreserveTimes  = "Copy modification times"
	MsgFlagFormat         = "Output format: table, yaml or json"
	MsgFlagWrite          = "Write ./.treedump.toml instead of printing"
	MsgFlagDefaults       = "Print the built-in defaults with their comments"
	MsgFlagManDir         = "Write one man page per command into this directory"
)

// Output messages
const (
	MsgVersionFormat   = "treedump version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigWritten   = "Wrote configuration to %s\n"
	MsgManPagesWritten = "Wrote man pages to %s\n"
)
