package gitrepo

// Service answers point-in-time questions about a working copy and runs
// engine commands in it. Query methods are best-effort: any internal
// failure degrades to the zero answer instead of an error.
type Service interface {
	IsRepository(path string) bool
	InitializeRepository(path string) error
	HasConflicts(path string) bool
	IsMergeInProgress(path string) bool
	CurrentBranch(path string) string
	Branches(path string) []string
	ConflictedFiles(path string) []string
	IsBranchMerged(path, branch, target string) bool
	RunCommand(path, commandLine string) string
}
