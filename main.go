/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/todolist/cmd"
	"github.com/josephgoksu/todolist/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
