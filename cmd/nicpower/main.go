// Command nicpower lists network adapter instances and disables their idle
// power-down by rewriting the PowerSettings values in the registry.
package main

func main() {
	execute()
}
