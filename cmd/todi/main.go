// Command todi runs the ToDI training-data toolkit.
package main

func main() {
	Execute()
}
