package course

import "time"

// Seed returns the built-in course catalog. DEV and tests load it into the
// in-memory repository; deployments author content directly in the database.
func Seed() ([]Course, []Lesson) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	courses := []Course{
		{
			ID:          "c-blockchain-basics",
			Title:       "Blockchain Basics",
			Description: "From M-Pesa to the ledger: what a blockchain is and why it matters for African finance.",
			Track:       "fundamentals",
			XPReward:    100,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "c-defi-on-hedera",
			Title:       "DeFi on Hedera",
			Description: "Liquidity pools, swaps and yield, simulated safely on the Hedera testnet.",
			Track:       "defi",
			XPReward:    150,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	lessons := []Lesson{
		{
			ID:       "l-what-is-a-ledger",
			CourseID: "c-blockchain-basics",
			Title:    "What is a Distributed Ledger?",
			Position: 1,
			Type:     LessonText,
			Content: TextContent{Sections: []TextSection{
				{
					Heading: "Your mobile money statement, shared",
					Body: "When you send money with mobile money, one company keeps the record. " +
						"A distributed ledger keeps that same record on thousands of computers at once, " +
						"so no single operator can alter or lose it.",
				},
				{
					Heading: "Consensus",
					Body: "Hedera uses a consensus algorithm to agree on the order of transactions. " +
						"Once recorded, a transaction cannot be rewritten.",
				},
			}},
		},
		{
			ID:       "l-basics-quiz",
			CourseID: "c-blockchain-basics",
			Title:    "Check Your Understanding",
			Position: 2,
			Type:     LessonQuiz,
			Content: QuizContent{Questions: []QuizQuestion{
				{
					Prompt:      "Who keeps the record of transactions on a distributed ledger?",
					Options:     []string{"One bank", "The government", "Many independent computers", "Your phone only"},
					Correct:     2,
					Explanation: "Every node keeps a full copy, which is what makes the ledger hard to tamper with.",
				},
				{
					Prompt:  "What does HBAR pay for on Hedera?",
					Options: []string{"Airtime", "Network transaction fees", "Bank charges", "Nothing"},
					Correct: 1,
				},
				{
					Prompt:      "A stranger promises to double any crypto you send them. This is:",
					Options:     []string{"A scam", "A staking pool", "An airdrop", "A stablecoin"},
					Correct:     0,
					Explanation: "Nobody can guarantee doubling your money. Never send funds to claim a prize.",
				},
				{
					Prompt:  "A transaction on Hedera typically reaches finality in:",
					Options: []string{"About a week", "About a day", "About an hour", "A few seconds"},
					Correct: 3,
				},
			}},
		},
		{
			ID:       "l-scam-spotter",
			CourseID: "c-blockchain-basics",
			Title:    "Scam or Legit?",
			Position: 3,
			Type:     LessonInteractive,
			Content: InteractiveContent{
				Exercise: "scam-spotter",
				Config: map[string]interface{}{
					"base_points":      10,
					"bonus_per_streak": 5,
				},
			},
		},
		{
			ID:       "l-first-transaction",
			CourseID: "c-blockchain-basics",
			Title:    "Your First Testnet Transaction",
			Position: 4,
			Type:     LessonPractical,
			Content: PracticalContent{
				InteractiveType: "testnet-faucet",
				Steps: []string{
					"Open the faucet panel and request test HBAR.",
					"Wait for the transfer to reach consensus.",
					"Find your transaction on the explorer using its ID.",
				},
				Tips: []string{
					"Testnet HBAR has no real value; experiment freely.",
				},
			},
		},
		{
			ID:       "l-liquidity-pools",
			CourseID: "c-defi-on-hedera",
			Title:    "Liquidity Pools and Yield",
			Position: 1,
			Type:     LessonText,
			Content: TextContent{Sections: []TextSection{
				{
					Heading: "Pooling funds, like a chama",
					Body: "A liquidity pool works a little like a savings circle: members deposit funds " +
						"into a shared pot, and the pot earns fees from traders who use it. Your share " +
						"of the fees is the yield, quoted as an APY.",
				},
				{
					Heading: "Risk tiers",
					Body: "Higher APY almost always means higher risk. Stablecoin pairs sit in the low " +
						"tier; new or volatile tokens sit in the high tier.",
				},
			}},
		},
		{
			ID:       "l-swap-simulator",
			CourseID: "c-defi-on-hedera",
			Title:    "Simulate a Token Swap",
			Position: 2,
			Type:     LessonPractical,
			Content: PracticalContent{
				InteractiveType: "swap-simulator",
				Steps: []string{
					"Pick the token you are swapping from and to.",
					"Enter an amount and review the quote: rate, fee, price impact.",
					"Check the minimum received before confirming.",
				},
				Tips: []string{
					"A large trade against a shallow pool moves the price against you.",
				},
			},
		},
	}

	return courses, lessons
}
