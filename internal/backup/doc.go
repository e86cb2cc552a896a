// Package backup creates a best-effort safety copy of the source tree
// before a destructive run.
//
// The backup lands in a sibling directory named
// <source>_backup_<YYYYMMDD_HHMMSS>. It is a safety net, not a journal:
// a backup failure is reported to the user, who decides whether to
// continue, and nothing is ever rolled back automatically.
package backup
