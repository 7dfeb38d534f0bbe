// Package cli provides the interactive termvault command-line client.
//
// It wires configuration, the credential store, the password hasher and the
// auth service, switches the terminal into raw mode for the session, and runs
// a small menu state machine:
//
//	MainMenu -> AwaitingChoice -> InLogin | InSignup -> MainMenu
//	                           -> Terminated
//
// Each login or signup ends with an outcome message and a "press Enter"
// pause. Auth failures never stop the loop; a broken terminal does.
//
// The menu is started via App.Run(ctx), which blocks until the user exits.
package cli
