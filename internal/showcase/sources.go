package showcase

// TypeScript sources shown in the feature showcase and the code example.

const (
	ssrSource = `// src/app/lists/[id]/page.tsx
import { createAccessToken, createActorFetch } from "actor-kit/server";
import { TodoActorKitProvider } from "./todo.context";

const fetchTodoActor = createActorFetch<TodoMachine>({
  actorType: "todo",
  host: process.env.ACTOR_KIT_HOST!,
});

export default async function TodoPage({ params }) {
  const listId = params.id;
  const userId = await getUserId();

  const accessToken = await createAccessToken({
    signingKey: process.env.ACTOR_KIT_SECRET!,
    actorId: listId,
    actorType: "todo",
    callerId: userId,
    callerType: "client",
  });

  const payload = await fetchTodoActor({
    actorId: listId,
    accessToken,
  });

  return (
    <TodoActorKitProvider
      host={host}
      actorId={listId}
      accessToken={accessToken}
      checksum={payload.checksum}
      initialSnapshot={payload.snapshot}
    >
      <TodoList />
    </TodoActorKitProvider>
  );
}`

	realtimeSource = `// src/app/lists/[id]/components.tsx
"use client";

import React, { useState } from "react";
import { TodoActorKitContext } from "./todo.context";

export function TodoList() {
  const todos = TodoActorKitContext.useSelector(
    (state) => state.public.todos
  );
  const send = TodoActorKitContext.useSend();
  const [newTodoText, setNewTodoText] = useState("");

  const handleAddTodo = (e) => {
    e.preventDefault();
    if (newTodoText.trim()) {
      send({ type: "ADD_TODO", text: newTodoText.trim() });
      setNewTodoText("");
    }
  };

  return (
    <div>
      <h1>Todo List</h1>
      <form onSubmit={handleAddTodo}>
        <input
          type="text"
          value={newTodoText}
          onChange={(e) => setNewTodoText(e.target.value)}
          placeholder="Add a new todo"
        />
        <button type="submit">Add</button>
      </form>
      <ul>
        {todos.map((todo) => (
          <li key={todo.id}>
            <span
              style={{
                textDecoration: todo.completed ? "line-through" : "none",
              }}
            >
              {todo.text}
            </span>
            <button onClick={() => send({ 
              type: "TOGGLE_TODO", 
              id: todo.id 
            })}>
              {todo.completed ? "Undo" : "Complete"}
            </button>
          </li>
        ))}
      </ul>
    </div>
  );
}`

	typeSafetySource = `// src/todo.schemas.ts
import { z } from "zod";

export const TodoClientEventSchema = z.discriminatedUnion("type", [
  z.object({
    type: z.literal("ADD_TODO"),
    text: z.string(),
  }),
  z.object({
    type: z.literal("TOGGLE_TODO"),
    id: z.string(),
  }),
  z.object({
    type: z.literal("DELETE_TODO"),
    id: z.string(),
  }),
]);

export const TodoServiceEventSchema = z.discriminatedUnion("type", [
  z.object({
    type: z.literal("SYNC_TODOS"),
    todos: z.array(
      z.object({ 
        id: z.string(), 
        text: z.string(), 
        completed: z.boolean() 
      })
    ),
  }),
]);

// src/todo.server.ts
import { createMachineServer } from "actor-kit/worker";

export const Todo = createMachineServer({
  machine: todoMachine,
  schemas: {
    clientEvent: TodoClientEventSchema,
    serviceEvent: TodoServiceEventSchema,
    inputProps: TodoInputPropsSchema,
  },
  options: {
    persisted: true,
  },
});`

	eventDrivenSource = `// src/todo.machine.ts
import { ActorKitStateMachine } from "actor-kit";
import { assign, setup } from "xstate";

export const todoMachine = setup({
  types: {
    context: {} as TodoServerContext,
    events: {} as TodoEvent,
    input: {} as TodoInput,
  },
  actions: {
    addTodo: assign({
      public: ({ context, event }) => {
        if (event.type !== "ADD_TODO") return context.public;
        return {
          ...context.public,
          todos: [
            ...context.public.todos,
            { 
              id: crypto.randomUUID(), 
              text: event.text, 
              completed: false 
            },
          ],
          lastSync: Date.now(),
        };
      },
    }),
    // other actions...
  },
}).createMachine({
  id: "todoList",
  initial: "idle",
  context: {
    public: {
      ownerId: caller.id,
      todos: [],
      lastSync: null,
    },
    private: {},
  },
  states: {
    idle: {
      on: {
        ADD_TODO: {
          actions: "addTodo",
        },
        TOGGLE_TODO: {
          actions: "toggleTodo",
        },
        DELETE_TODO: {
          actions: "deleteTodo",
        },
      },
    },
    // other states...
  },
});`

	stateMachineSource = `// State machine visualization example
/*
      +------------------------+
      |         idle          |<---------+
      +------------------------+         |
               |  |                      |
               |  |                      |
               |  v                      |
      +------------------------+         |
      |        loading        |         |
      +------------------------+         |
               |                         |
               |                         |
               v                         |
      +------------------------+         |
      |         ready         |-----------+
      +------------------------+         | |
               |                         | |
               |                         | |
               v                         | |
      +------------------------+         | |
      |     synchronizing     |         | |
      +------------------------+         | |
               |                         | |
               |                         | |
               v                         | |
      +------------------------+         | |
      |     synchronized      |---------+ |
      +------------------------+           |
                                          |
      +------------------------+           |
      |         error          |<-----------+
      +------------------------+
*/

// Visualization with interactive state inspection
import { useMachine } from '@xstate/react';
import { inspect } from '@xstate/inspect';

// Enable visual debugger in development
if (process.env.NODE_ENV === 'development') {
  inspect({
    url: 'https://stately.ai/viz?inspect',
    iframe: () => document.querySelector('#xstate-inspector')
  });
}

function TodoApp() {
  const [state, send] = useMachine(todoMachine, { 
    devTools: true 
  });
  
  return (
    <div>
      <div className="state-indicator">
        Current state: {state.value}
      </div>
      {/* Rest of your component */}
      
      {/* Add this at the bottom of your app */}
      <iframe id="xstate-inspector" />
    </div>
  );
}`

	accessControlSource = `// Access control with caller-specific private data
export type TodoPublicContext = {
  ownerId: string;
  todos: Array<{ 
    id: string; 
    text: string; 
    completed: boolean 
  }>;
  lastSync: number | null;
};

export type TodoPrivateContext = {
  accessCount: number;
  settings: {
    sortOrder: "asc" | "desc";
    showCompleted: boolean;
  }
};

export type TodoServerContext = {
  public: TodoPublicContext;
  private: Record<string, TodoPrivateContext>;
};

// Update private data in an action
const incrementAccessCount = assign({
  private: ({ context, caller }) => {
    const currentCallerPrivate = context.private[caller.id] || { 
      accessCount: 0,
      settings: {
        sortOrder: "asc",
        showCompleted: true
      }
    };
    
    return {
      ...context.private,
      [caller.id]: {
        ...currentCallerPrivate,
        accessCount: currentCallerPrivate.accessCount + 1
      }
    };
  }
});`

	machineSource = `import { ActorKitStateMachine } from "actor-kit";
import { assign, setup } from "xstate";
import type {
  GameEvent,
  GameInput,
  GamePrivateContext,
  GamePublicContext,
  GameServerContext,
  Player,
} from "./game.types";

export const gameMachine = setup({
  types: {
    context: {} as GameServerContext,
    events: {} as GameEvent,
    input: {} as GameInput,
  },
  actions: {
    addPlayer: assign({
      public: ({ context, event }) => {
        if (event.type !== "JOIN_GAME") return context.public;
        
        // Check if player already exists
        const existingPlayerIndex = context.public.players.findIndex(
          (p) => p.id === event.caller.id
        );
        
        // If player exists, update their name
        if (existingPlayerIndex >= 0) {
          const updatedPlayers = [...context.public.players];
          updatedPlayers[existingPlayerIndex] = {
            ...updatedPlayers[existingPlayerIndex],
            name: event.name,
            status: "ready",
          };
          
          return {
            ...context.public,
            players: updatedPlayers,
          };
        }
        
        // Otherwise add new player
        const newPlayer: Player = {
          id: event.caller.id,
          name: event.name,
          score: 0,
          status: "ready",
        };
        
        return {
          ...context.public,
          players: [...context.public.players, newPlayer],
        };
      },
    }),
    
    startGame: assign({
      public: ({ context }) => ({
        ...context.public,
        gameStatus: "active",
        currentRound: 1,
        startTime: Date.now(),
      }),
    }),
    
    // More actions...
  },
  guards: {
    isGameOwner: ({ context, event }) => {
      return context.public.ownerId === event.caller.id;
    },
    hasEnoughPlayers: ({ context }) => {
      return context.public.players.length >= 2;
    },
  },
}).createMachine({
  id: "game",
  initial: "lobby",
  context: {
    public: {
      ownerId: caller.id,
      players: [],
      gameStatus: "waiting",
      currentRound: 0,
      rounds: 3,
      startTime: null,
    },
    private: {},
  },
  states: {
    lobby: {
      on: {
        JOIN_GAME: {
          actions: "addPlayer",
        },
        LEAVE_GAME: {
          actions: "removePlayer",
        },
        START_GAME: {
          guard: "isGameOwner",
          actions: "startGame",
          target: "playing",
        },
      },
    },
    playing: {
      on: {
        SUBMIT_ANSWER: {
          actions: "recordAnswer",
        },
        END_ROUND: {
          guard: "isGameOwner",
          actions: "endRound",
          target: "roundEnded",
        },
      },
    },
    roundEnded: {
      on: {
        START_NEXT_ROUND: {
          guard: "isGameOwner",
          actions: "startNextRound",
          target: "playing",
        },
        END_GAME: {
          guard: "isGameOwner",
          actions: "endGame",
          target: "gameOver",
        },
      },
    },
    gameOver: {
      on: {
        RESTART_GAME: {
          guard: "isGameOwner",
          actions: "resetGame",
          target: "lobby",
        },
      },
    },
  },
}) satisfies ActorKitStateMachine<
  GameEvent,
  GameInput,
  GamePrivateContext,
  GamePublicContext
>;`

	serverSource = `import { createMachineServer } from "actor-kit/worker";
import { gameMachine } from "./game.machine";
import {
  GameClientEventSchema,
  GameServiceEventSchema,
  GameInputPropsSchema,
} from "./game.schemas";

export const Game = createMachineServer({
  machine: gameMachine,
  schemas: {
    clientEvent: GameClientEventSchema,
    serviceEvent: GameServiceEventSchema,
    inputProps: GameInputPropsSchema,
  },
  options: {
    persisted: true,
  },
});

export type GameServer = InstanceType<typeof Game>;
export default Game;`

	workerSource = `import { DurableObjectNamespace } from "@cloudflare/workers-types";
import { AnyActorServer } from "actor-kit";
import { createActorKitRouter } from "actor-kit/worker";
import { WorkerEntrypoint } from "cloudflare:workers";
import { Game, GameServer } from "./game.server";

interface Env {
  GAME: DurableObjectNamespace<GameServer>;
  ACTOR_KIT_SECRET: string;
  [key: string]: DurableObjectNamespace<AnyActorServer> | unknown;
}

const router = createActorKitRouter<Env>(["game"]);

export { Game };

export default class Worker extends WorkerEntrypoint<Env> {
  fetch(request: Request): Promise<Response> | Response {
    if (request.url.includes("/api/")) {
      return router(request, this.env, this.ctx);
    }

    return new Response("Game API powered by ActorKit");
  }
}`

	clientSource = `"use client";

import React, { useState } from "react";
import { GameActorKitContext } from "./game.context";
import { Button } from "./ui/button";
import { Input } from "./ui/input";

export function GameLobby() {
  const gameStatus = GameActorKitContext.useSelector(
    (state) => state.public.gameStatus
  );
  const players = GameActorKitContext.useSelector(
    (state) => state.public.players
  );
  const ownerId = GameActorKitContext.useSelector(
    (state) => state.public.ownerId
  );
  const send = GameActorKitContext.useSend();
  const [playerName, setPlayerName] = useState("");
  
  const isOwner = GameActorKitContext.useClient().callerId === ownerId;
  
  const handleJoinGame = (e) => {
    e.preventDefault();
    if (playerName.trim()) {
      send({ type: "JOIN_GAME", name: playerName.trim() });
    }
  };
  
  const handleStartGame = () => {
    send({ type: "START_GAME" });
  };
  
  return (
    <div>
      <h1>Game Lobby</h1>
      
      {players.length > 0 ? (
        <div>
          <h2>Players:</h2>
          <ul>
            {players.map((player) => (
              <li key={player.id}>
                {player.name} {player.id === ownerId && "(Host)"}
              </li>
            ))}
          </ul>
          
          {isOwner && players.length >= 2 && (
            <Button onClick={handleStartGame}>
              Start Game
            </Button>
          )}
        </div>
      ) : (
        <form onSubmit={handleJoinGame}>
          <Input
            value={playerName}
            onChange={(e) => setPlayerName(e.target.value)}
            placeholder="Enter your name"
          />
          <Button type="submit">
            Join Game
          </Button>
        </form>
      )}
    </div>
  );
}`
)
