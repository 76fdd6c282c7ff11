package main

import "github.com/arl/geosurvey/cmd/geosurvey/cmd"

func main() {
	cmd.Execute()
}
