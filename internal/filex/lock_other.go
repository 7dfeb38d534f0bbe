//go:build !unix

package filex

import "os"

// Advisory locking is only implemented for unix; elsewhere the lock file is
// created but not locked.
func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }
