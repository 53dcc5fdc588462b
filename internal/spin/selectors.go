package spin

// Selectors for the mini-app frame and the host page wallet modal. These
// mirror the current Monad Spin DOM; the app ships UI changes without
// notice, so they live in one place.
const (
	// SpinButton triggers a spin inside the app frame.
	SpinButton = `button:has-text("SPIN NOW")`

	// SpinAgainButton dismisses the result overlay after a spin.
	SpinAgainButton = `button:has-text("Spin Again")`

	// WinHeading appears on the result overlay for a winning spin.
	WinHeading = `h2:has-text("CONGRATULATIONS")`

	// LossHeading appears on the result overlay for a losing spin.
	LossHeading = `h2:has-text("Better luck next time")`

	// PrizeText holds the prize line on a winning overlay, for example
	// "0.00001 WBTC".
	PrizeText = `.text-yellow-300`

	// SwitchNetworkButton is the network prompt that can cover the app
	// after launch.
	SwitchNetworkButton = `button:has-text("Switch to Monad Testnet")`

	// SpinsRemainingValue is the counter showing how many spins are left.
	SpinsRemainingValue = `div.text-2xl.font-bold.text-white`

	// WalletFrame is the wallet transaction modal iframe on the host page.
	WalletFrame = `iframe[src^='https://wallet.farcaster.xyz/MiniAppTransactionModal']`

	// WalletConfirm is the confirm control inside the wallet modal.
	WalletConfirm = `button:has-text("Confirm")`

	// WalletConfirmFallback matches confirm controls not rendered as
	// button elements.
	WalletConfirmFallback = `[role="button"]:has-text("Confirm")`
)
