package main

import (
	"fmt"
	"os"

	"fintrack/cmd/add"
	"fintrack/cmd/analyze"
	"fintrack/cmd/importcsv"
	"fintrack/cmd/list"
	"fintrack/cmd/remove"
	"fintrack/cmd/root"
	"fintrack/cmd/setcategory"
	"fintrack/cmd/suggest"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(setcategory.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(importcsv.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
