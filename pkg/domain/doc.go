/*
Package domain contains the core domain models of the coffee machine.

It defines the entities the controller works with: bounded deposits, the fixed
recipe table, the derived machine state and the operator actions. This package is
kept pure and free of external dependencies like I/O or persistence.

# Key Entities

  - Deposit: A bounded counter (coffee grounds, water, waste).
  - Recipe: Per-brew consumption of coffee and water.
  - State: Ready or ActionRequired, always derived from deposit loads.
  - Action: An operator-selectable operation, with a fixed label table.
  - Profile: Deposit capacities plus the recipe table a machine is built from.
*/
package domain
