package main

import "github.com/msultanalhakim/productivity-dashboard/cmd/dash/root"

func main() {
	root.Execute()
}
