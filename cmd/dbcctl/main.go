// Command dbcctl inspects and exports DBC client data tables.
package main

func main() {
	execute()
}
