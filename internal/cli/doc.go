// Package cli parses the command line of dijkstra-stepper into a Config.
//
// Parse never calls os.Exit. Invalid input is reported as an *ExitError that
// carries the exit code the binary should use; a request for help returns
// shouldExit=true with a nil error.
package cli
