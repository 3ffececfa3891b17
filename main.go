package main

import "github.com/arnicahealth/arnica_backend/cmd"

func main() {
	cmd.Execute()
}
