package command

import (
	"strings"

	"github.com/lawnchairsociety/delver/internal/combat"
)

// executeAttack plays one round of combat
//
//	attack              - hit the only enemy
//	attack <n>          - hit enemy n of a swarm
//	attack spell <m>    - cast learned spell m with a spell book
//	attack <n> spell <m>
func (c *Command) executeAttack(s *Session) string {
	action, err := c.parseAction()
	if err != nil {
		return describeError(err)
	}
	out, err := s.Game.Attack(action)
	if err != nil {
		return describeError(err)
	}

	msg := describeOutcome(out)
	if out.TargetDefeated && !s.Game.Room().HasEnemies() {
		msg += "\n\n" + describeRoom(s.Game)
	}
	return msg
}

func (c *Command) parseAction() (combat.Action, error) {
	var action combat.Action
	args := c.Args
	if len(args) > 0 && !strings.EqualFold(args[0], "spell") {
		i, err := parseIndex(args[0])
		if err != nil {
			return action, err
		}
		action.Target = i
		args = args[1:]
	}
	if len(args) >= 2 && strings.EqualFold(args[0], "spell") {
		i, err := parseIndex(args[1])
		if err != nil {
			return action, err
		}
		action.Spell = i
	}
	return action, nil
}
