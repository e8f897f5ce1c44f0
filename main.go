/*
backup-wrapper selects what to back up by looking for an extended attribute.

Tag the directories you want in your backups, then let backup-wrapper call
duplicity or restic with exactly those directories. Everything that is not
tagged is left out. Directories are searched up to two levels below the root.

For example, to back up two home folders with restic:

	setfattr -n user.backup -v 1 /home/alice
	backup-wrapper tag /home/bob/Documents
	backup-wrapper list -r /home
	backup-wrapper restic -r /home -p /etc/restic/password backup

On success the backup tool replaces backup-wrapper, so its exit status is the
one seen by the caller.

Usage:

	backup-wrapper [command]

Available Commands:

	completion  Generate the autocompletion script for the specified shell
	duplicity   Performs a backup using the duplicity tool
	help        Help about any command
	init        Creates an example configuration file
	list        Show the list of directories to be included in the backup
	restic      Performs a backup using the restic tool
	tag         Marks directories to be included in the backup
	untag       Excludes directories from the backup
	version     Shows version and exits

Flags:

	-a, --attribute string   Extended attribute holding the level (default "user.backup")
	-c, --config string      TOML file with default values for the flags
	-n, --dry-run            Print the command instead of running it
	-h, --help               help for backup-wrapper
	-l, --level string       Attribute value a directory must have to be selected (default "1")
	-v, --verbose            Log every entry that could not be inspected

Use "backup-wrapper [command] --help" for more information about a command.
*/
package main

import "github.com/acristoffers/backup-wrapper/cmd"

func main() {
	cmd.Execute()
}
