// Package prompt implements the blocking question loop used by the CLI.
//
// A [Prompter] asks a question, reads one line from an [AnswerSource] and
// repeats until the answer is one of the offered choices. Answers are
// compared case-insensitively after trimming. Sources are swappable: the
// console source reads standard input, the scripted source replays fixed
// answers for headless runs and tests.
package prompt
