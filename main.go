package main

import "github.com/pavan-musthala/aerofit-analytics/cmd"

func main() {
	cmd.Execute()
}
