// Package cli implements the sysmon command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a plain function for the actual work:
//
//	sysmon sample   - Take one sample, print the status line, exit
//	sysmon watch    - Live full-screen view refreshing on the poll interval
//	sysmon init     - Create .sysmon.yaml interactively
//	sysmon version  - Print build information
//
// Every command goes through the same two library operations the embedding
// hosts use: sysmon.Initialize with the resolved preferences, then
// sysmon.Sample. Config resolution (flag > .sysmon.yaml > defaults) happens
// entirely in this package; the core library never reads files.
package cli
