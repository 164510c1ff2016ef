package main

import "gql2csv/cmd"

func main() {
	cmd.Execute()
}
