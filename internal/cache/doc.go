// Package cache persists the catalog to <cache_dir>/executables.txt.
//
// The file holds one record per line: a bare command for binaries, or
// "D:<name> - <command>" for desktop entries. There is no header or
// checksum; the file's own modification time decides whether it is still
// valid for the directories being scanned.
//
// Desktop names are escaped ("\" becomes "\\", "-" becomes "\-") so the
// first " - " on a line is always the separator. Binary commands that
// contain a space, or that start with "D:", are written but rejected when
// the file is read back.
package cache
