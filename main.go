package main

import "s3stats/cmd"

func main() {
	cmd.Execute()
}
