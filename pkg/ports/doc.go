/*
Package ports defines the contract between the coffee machine and the hosts
that drive it.

# Key Interfaces

  - Machine: Read the state, list the valid actions, submit a label, render the status.

RunMachineContract verifies that an implementation honours the contract; any
host-facing wrapper around the controller should pass it.
*/
package ports
