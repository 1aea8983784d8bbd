// Package cmake formats and executes cmake invocations and reads the
// CMake File API.
package cmake

import "fmt"

// ConfigureCommand formats the configure invocation for a build directory
// relative to the project root.
func ConfigureCommand(cmakeCmd, buildDir string) string {
	return fmt.Sprintf("%s -B%s -H.", cmakeCmd, buildDir)
}

// BuildCommand formats the build invocation for a build directory relative
// to the project root.
func BuildCommand(cmakeCmd, buildDir string) string {
	return fmt.Sprintf("%s --build %s", cmakeCmd, buildDir)
}
