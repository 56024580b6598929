package orchestrator

import "github.com/katalvlaran/platracer/external"

// updateSteering resolves the agent and target's current platforms,
// recomputes the stored trace when both resolve, and emits the
// directional input for the trace segment the agent currently stands
// on. Any missing collaborator data leaves the previous trace in place
// and, if the agent itself cannot be resolved, emits zero input.
func (o *Orchestrator) updateSteering() {
	agentObj, agentOK := o.controller.StandingPlatform(external.AgentActor)
	targetObj, targetOK := o.controller.StandingPlatform(external.TargetActor)

	if agentOK && targetOK {
		agentRect := o.objects.BoundingRectangle(agentObj)
		targetRect := o.objects.BoundingRectangle(targetObj)

		originEdge, originOK := o.graph.FindObjectLinks(agentObj, agentRect)
		destEdge, destOK := o.graph.FindObjectLinks(targetObj, targetRect)

		if originOK && destOK {
			steps, err := o.graph.AStar(originEdge.ID, destEdge.ID)
			if err != nil {
				o.forceRebuild = true
				o.log.Warnf("AStar failed, scheduling full rebuild: %v", err)
			} else {
				o.trace = steps
			}
		}
	}

	if !agentOK || len(o.trace) == 0 {
		o.steering.SetDirectionalInput(external.Vec2{})
		return
	}

	idx := -1
	for i, step := range o.trace {
		if step.Object == agentObj {
			idx = i
			break
		}
	}
	if idx == -1 || idx == len(o.trace)-1 {
		o.steering.SetDirectionalInput(external.Vec2{})
		return
	}

	current := o.trace[idx].Edge
	next := o.trace[idx+1].Edge
	distLeft := next.Line.Distance(current.LeftNode())
	distRight := next.Line.Distance(current.RightNode())
	if distLeft < distRight {
		o.steering.SetDirectionalInput(external.Vec2{X: -1})
		return
	}
	o.steering.SetDirectionalInput(external.Vec2{X: 1})
}
