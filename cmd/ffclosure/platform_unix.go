//go:build darwin || linux

package main

import "golang.org/x/sys/unix"

func platformDescription() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "unknown"
	}
	return unix.ByteSliceToString(uts.Sysname[:]) + " " +
		unix.ByteSliceToString(uts.Release[:]) + " " +
		unix.ByteSliceToString(uts.Machine[:])
}
