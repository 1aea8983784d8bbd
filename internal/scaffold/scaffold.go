// Package scaffold generates CMakeLists.txt files for new projects.
package scaffold

import "fmt"

// Generator produces the text of a CMakeLists.txt file. Implementations
// must be pure: repeated calls return identical output.
type Generator func() string

// templateBody is the default CMakeLists.txt layout. The two substitutions
// are the minimum CMake version and the project name.
const templateBody = `cmake_minimum_required(VERSION %s)

set(PROJECT_NAME %s)
project(${PROJECT_NAME})

set(CMAKE_EXPORT_COMPILE_COMMANDS ON)
`

// Render produces the default CMakeLists.txt body for a project name and a
// minimum CMake version.
func Render(projectName, minimumVersion string) string {
	return fmt.Sprintf(templateBody, minimumVersion, projectName)
}

// Default returns the built-in Generator bound to the given project name
// and minimum version.
func Default(projectName, minimumVersion string) Generator {
	return func() string {
		return Render(projectName, minimumVersion)
	}
}
