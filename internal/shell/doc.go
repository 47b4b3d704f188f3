// Package shell formats resolved environment variables as eval-able
// statements and generates prompt-hook snippets (PROMPT_COMMAND for
// Bash, precmd_functions for Zsh, fish_prompt event for Fish) that
// call envy export on each prompt.
package shell
