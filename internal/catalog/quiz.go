package catalog

// QuizQuestion is one Hedera QCM entry. Answer is the index into Options.
type QuizQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  int      `json:"-"`
}

var hederaQuiz = []QuizQuestion{
	{
		ID:     "hedera-consensus",
		Prompt: "Which consensus algorithm does Hedera use?",
		Options: []string{
			"Proof of Work",
			"Hashgraph (asynchronous BFT)",
			"Delegated Proof of Stake",
			"Raft",
		},
		Answer: 1,
	},
	{
		ID:     "hedera-token",
		Prompt: "What is the native token of the Hedera network?",
		Options: []string{"HBAR", "HDR", "ETH", "HTS"},
		Answer: 0,
	},
	{
		ID:     "hedera-service",
		Prompt: "Which Hedera service is used to mint fungible tokens?",
		Options: []string{
			"Consensus Service",
			"File Service",
			"Token Service",
			"Smart Contract Service",
		},
		Answer: 2,
	},
	{
		ID:     "hedera-contracts",
		Prompt: "Hedera smart contracts are written in which language?",
		Options: []string{"Rust", "Move", "Solidity", "Vyper"},
		Answer: 2,
	},
	{
		ID:     "hedera-finality",
		Prompt: "Transaction finality on Hedera is typically reached in:",
		Options: []string{
			"About an hour",
			"Several minutes",
			"A few seconds",
			"One day",
		},
		Answer: 2,
	},
}

// HederaQuiz returns the QCM question bank in presentation order
func HederaQuiz() []QuizQuestion {
	return hederaQuiz
}

// ScoreQuiz counts correct answers. Unanswered or unknown question ids
// simply score zero for that question.
func ScoreQuiz(answers map[string]int) (correct, total int) {
	total = len(hederaQuiz)
	for _, q := range hederaQuiz {
		if got, ok := answers[q.ID]; ok && got == q.Answer {
			correct++
		}
	}
	return correct, total
}
