package main

import "github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/cmd"

func main() {
	cmd.Execute()
}
