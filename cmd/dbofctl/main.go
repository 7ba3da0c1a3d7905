// Command dbofctl inspects and builds DBOF-encoded files from the shell.
package main

func main() {
	execute()
}
