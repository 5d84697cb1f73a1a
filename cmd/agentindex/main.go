package main

import "github.com/agentauri/agentindex/internal/app"

func main() {
	err := app.NewAgentIndex().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
