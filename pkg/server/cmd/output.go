/* Copyright 2026 Libris Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	colorRed   = color.New(color.FgRed)
	colorGreen = color.New(color.FgGreen)
	colorBlue  = color.New(color.FgBlue)
)

// printInfo prints operator information to stdout
func printInfo(msg string, v ...interface{}) {
	fmt.Fprintf(color.Output, "%s %s\n", colorBlue.Sprint("•"), fmt.Sprintf(msg, v...))
}

// printSuccess prints a success message to stdout
func printSuccess(msg string, v ...interface{}) {
	fmt.Fprintf(color.Output, "%s %s\n", colorGreen.Sprint("✔"), fmt.Sprintf(msg, v...))
}

// printError prints an error message to stdout
func printError(msg string, v ...interface{}) {
	fmt.Fprintf(color.Output, "%s %s\n", colorRed.Sprint("✘"), fmt.Sprintf(msg, v...))
}
