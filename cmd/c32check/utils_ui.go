package main

import (
	"github.com/fatih/color"
)

// UI Helpers for standardized logging

func PrintSuccess(format string, a ...interface{}) {
	color.Green("✅ "+format, a...)
}

// PrintError writes to stderr so command output stays pipeable.
func PrintError(format string, a ...interface{}) {
	c := color.New(color.FgRed)
	c.Fprintf(color.Error, "⛔ "+format+"\n", a...)
}

func PrintInfo(format string, a ...interface{}) {
	color.Cyan("ℹ️  "+format, a...)
}

func PrintWarning(format string, a ...interface{}) {
	color.Yellow("⚠️  "+format, a...)
}

func PrintRequest(format string, a ...interface{}) {
	// Blue for API traffic
	c := color.New(color.FgBlue)
	c.Printf("🌐 "+format+"\n", a...)
}
